package service

import (
	"regexp"
	"strconv"
)

var zipRegex = regexp.MustCompile(`^[0-9]{5}(-[0-9]{4})?$`)

type ZipCodes interface {
	Contains(zip string) bool
}

type zip3Range struct {
	from, to int
}

// MNZipCodes matches the zip codes delivered in Minnesota.
type MNZipCodes struct {
	ranges []zip3Range
}

var _ ZipCodes = (*MNZipCodes)(nil)

func NewMNZipCodes() *MNZipCodes {
	return &MNZipCodes{
		ranges: []zip3Range{
			{550, 551},
			{553, 567},
		},
	}
}

// Contains accepts 5 digit zip codes and ZIP+4 codes.
func (m *MNZipCodes) Contains(zip string) bool {
	if !ValidZip(zip) {
		return false
	}
	prefix, err := strconv.Atoi(zip[:3])
	if err != nil {
		return false
	}
	for _, r := range m.ranges {
		if prefix >= r.from && prefix <= r.to {
			return true
		}
	}
	return false
}

func ValidZip(zip string) bool {
	return zipRegex.MatchString(zip)
}
