package datefmt

import (
	"time"

	"golang.org/x/text/language"
)

var tzCET = time.FixedZone("Europe/Paris", 2*3600)
var tzPST = time.FixedZone("America/Los_Angeles", -8*3600)

var midnight = NewMoment(1970, time.January, 28, 0, 0)

var en = NewPrinter(language.AmericanEnglish, tzPST)
var fr = NewPrinter(language.CanadianFrench, tzCET)
var es = NewPrinter(language.MustParse("es-US"), tzPST)

func at(hour, minute int) Moment {
	return NewMoment(1970, time.January, 28, hour, minute)
}
