package store_test

import (
	"context"

	"github.com/moveplanner/estimator/internal/store"
	"github.com/moveplanner/estimator/internal/store/model"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"gorm.io/gorm"
)

const (
	insertBlackoutStm = "INSERT INTO blackouts (date, meridian, reason) VALUES (?, ?, ?);"
)

var _ = Describe("blackout store", Ordered, func() {
	var (
		s      store.Store
		gormdb *gorm.DB
	)

	BeforeAll(func() {
		gormdb = newTestDB()
		s = store.NewStore(gormdb)
		Expect(s.InitialMigration(context.TODO())).To(BeNil())
	})

	AfterAll(func() {
		s.Close()
	})

	Context("List", func() {
		BeforeEach(func() {
			for _, row := range [][]any{
				{"2026-11-26", "all", "Thanksgiving"},
				{"2026-12-24", "pm", "Christmas Eve"},
				{"2026-12-25", "all", "Christmas"},
				{"2026-12-31", "am", ""},
			} {
				tx := gormdb.Exec(insertBlackoutStm, row...)
				Expect(tx.Error).To(BeNil())
			}
		})

		It("lists all blackouts ordered by date", func() {
			blackouts, err := s.Blackout().List(context.TODO(), store.NewBlackoutQueryFilter())
			Expect(err).To(BeNil())
			Expect(blackouts).To(HaveLen(4))
			Expect(blackouts[0].Date).To(Equal("2026-11-26"))
			Expect(blackouts[3].Date).To(Equal("2026-12-31"))
		})

		It("accepts a nil filter", func() {
			blackouts, err := s.Blackout().List(context.TODO(), nil)
			Expect(err).To(BeNil())
			Expect(blackouts).To(HaveLen(4))
		})

		It("filters by date range", func() {
			blackouts, err := s.Blackout().List(context.TODO(), store.NewBlackoutQueryFilter().From("2026-12-01").Until("2026-12-25"))
			Expect(err).To(BeNil())
			Expect(blackouts).To(HaveLen(2))
			Expect(blackouts[0].Reason).To(Equal("Christmas Eve"))
			Expect(blackouts[1].Reason).To(Equal("Christmas"))
		})

		It("filters by date and meridian", func() {
			blackouts, err := s.Blackout().List(context.TODO(), store.NewBlackoutQueryFilter().ByDate("2026-12-24").ByMeridian(model.MeridianAfternoon, model.MeridianAllDay))
			Expect(err).To(BeNil())
			Expect(blackouts).To(HaveLen(1))

			blackouts, err = s.Blackout().List(context.TODO(), store.NewBlackoutQueryFilter().ByDate("2026-12-24").ByMeridian(model.MeridianMorning))
			Expect(err).To(BeNil())
			Expect(blackouts).To(BeEmpty())
		})

		AfterEach(func() {
			gormdb.Exec("DELETE FROM blackouts;")
		})
	})

	Context("Create", func() {
		It("defaults to an all day blackout", func() {
			b, err := s.Blackout().Create(context.TODO(), model.Blackout{Date: "2027-01-01"})
			Expect(err).To(BeNil())
			Expect(b.Meridian).To(Equal(model.MeridianAllDay))
		})

		It("rejects malformed dates", func() {
			_, err := s.Blackout().Create(context.TODO(), model.Blackout{Date: "01/01/2027"})
			Expect(err).NotTo(BeNil())

			count := 0
			tx := gormdb.Raw("SELECT COUNT(*) FROM blackouts;").Scan(&count)
			Expect(tx.Error).To(BeNil())
			Expect(count).To(Equal(0))
		})

		AfterEach(func() {
			gormdb.Exec("DELETE FROM blackouts;")
		})
	})

	Context("Delete", func() {
		It("deletes a blackout", func() {
			b, err := s.Blackout().Create(context.TODO(), model.Blackout{Date: "2027-01-01"})
			Expect(err).To(BeNil())

			Expect(s.Blackout().Delete(context.TODO(), b.ID)).To(BeNil())

			blackouts, err := s.Blackout().List(context.TODO(), nil)
			Expect(err).To(BeNil())
			Expect(blackouts).To(BeEmpty())
		})

		It("returns not found for unknown ids", func() {
			err := s.Blackout().Delete(context.TODO(), 4242)
			Expect(err).To(MatchError(store.ErrRecordNotFound))
		})
	})
})
