package display

import (
	"math/rand"
	"time"
)

// Season selects which greeting table is in effect
type Season int

const (
	SeasonDefault Season = iota
	SeasonNewYear        // Jan 1-7
	SeasonSpooky         // Oct 7-31
	SeasonHoliday        // all of December
)

// CurrentSeason maps a date onto the greeting calendar
func CurrentSeason(now time.Time) Season {
	switch now.Month() {
	case time.January:
		if now.Day() <= 7 {
			return SeasonNewYear
		}
	case time.October:
		if now.Day() >= 7 {
			return SeasonSpooky
		}
	case time.December:
		return SeasonHoliday
	}
	return SeasonDefault
}

var greetings = map[Season][]string{
	SeasonDefault: {
		"Let's build something new.",
		"Initializing launch sequence.",
		"A fresh project, hot off the press.",
	},
	SeasonNewYear: {
		"New year, new project!",
		"Happy new year! Let's start something.",
	},
	SeasonSpooky: {
		"A spooky new project rises from the grave.",
		"Something wicked this way compiles.",
	},
	SeasonHoliday: {
		"Happy holidays! Unwrapping a new project.",
		"'Tis the season for fresh code.",
	},
}

var accessories = map[Season][]string{
	SeasonDefault: {"✨", "🚀"},
	SeasonNewYear: {"🎉", "🎆"},
	SeasonSpooky:  {"🎃", "👻", "🦇"},
	SeasonHoliday: {"🎄", "❄️", "🎁"},
}

// fancyAccessories replace the seasonal set under --fancy
var fancyAccessories = []string{"💎", "🪩", "🌈"}

// Greeting returns the seasonal welcome line, with an accessory emoji
// appended roughly one run in four.
func Greeting(now time.Time, fancy bool) string {
	season := CurrentSeason(now)
	pool := greetings[season]
	msg := pool[rand.Intn(len(pool))]

	if rand.Intn(4) == 0 {
		set := accessories[season]
		if fancy {
			set = fancyAccessories
		}
		msg += " " + set[rand.Intn(len(set))]
	}
	return msg
}

// Farewell is the closing line printed after next steps
func Farewell() string {
	farewells := []string{
		"Good luck out there.",
		"Happy coding!",
		"See you in the changelog.",
	}
	return farewells[rand.Intn(len(farewells))]
}
