package dechours

import (
	"io/ioutil"
	"testing"

	"github.com/stretchr/testify/suite"
	yaml "gopkg.in/yaml.v2"
)

type suiteConversionTester struct {
	suite.Suite
}

type ConversionEntry struct {
	Name           string `yaml:"name"`
	Hours          int64  `yaml:"hours"`
	Minutes        int64  `yaml:"minutes"`
	DecimalMinutes int64  `yaml:"decimal_minutes"`
}

func (ce *ConversionEntry) Test(s *suiteConversionTester) {
	s.T().Run(ce.Name, func(t *testing.T) {
		d, err := Of(ce.Hours, ce.Minutes)

		s.NoError(err)
		s.Equal(ce.DecimalMinutes, d.DecimalMinutes())

		// the generic amount path lands on the same value
		fromAmount, err := From(hoursMinutes{hours: ce.Hours, minutes: ce.Minutes})
		s.NoError(err)
		s.Equal(d, fromAmount)
	})
}

func (s *suiteConversionTester) TestConversions() {
	conversionsFile, err := ioutil.ReadFile("./fixtures/conversions.yaml")

	s.NoError(err)

	var entries []ConversionEntry
	err = yaml.Unmarshal(conversionsFile, &entries)
	if err != nil {
		panic(err)
	}

	for _, entry := range entries {
		entry.Test(s)
	}
}

func TestConversionSuite(t *testing.T) {
	suite.Run(t, new(suiteConversionTester))
}
