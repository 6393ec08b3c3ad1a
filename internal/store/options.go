package store

import (
	"github.com/moveplanner/estimator/internal/store/model"
	"gorm.io/gorm"
)

type BaseQuerier struct {
	QueryFn []func(tx *gorm.DB) *gorm.DB
}

func (b BaseQuerier) apply(tx *gorm.DB) *gorm.DB {
	for _, fn := range b.QueryFn {
		tx = fn(tx)
	}
	return tx
}

type BlackoutQueryFilter BaseQuerier

func NewBlackoutQueryFilter() *BlackoutQueryFilter {
	return &BlackoutQueryFilter{QueryFn: make([]func(tx *gorm.DB) *gorm.DB, 0)}
}

// From keeps blackouts on or after date (YYYY-MM-DD).
func (f *BlackoutQueryFilter) From(date string) *BlackoutQueryFilter {
	f.QueryFn = append(f.QueryFn, func(tx *gorm.DB) *gorm.DB {
		return tx.Where("date >= ?", date)
	})
	return f
}

// Until keeps blackouts on or before date (YYYY-MM-DD).
func (f *BlackoutQueryFilter) Until(date string) *BlackoutQueryFilter {
	f.QueryFn = append(f.QueryFn, func(tx *gorm.DB) *gorm.DB {
		return tx.Where("date <= ?", date)
	})
	return f
}

func (f *BlackoutQueryFilter) ByDate(date string) *BlackoutQueryFilter {
	f.QueryFn = append(f.QueryFn, func(tx *gorm.DB) *gorm.DB {
		return tx.Where("date = ?", date)
	})
	return f
}

func (f *BlackoutQueryFilter) ByMeridian(meridians ...model.Meridian) *BlackoutQueryFilter {
	f.QueryFn = append(f.QueryFn, func(tx *gorm.DB) *gorm.DB {
		return tx.Where("meridian IN ?", meridians)
	})
	return f
}
