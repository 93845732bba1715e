package utils

import (
	"fmt"
	"time"
)

const DateLayout = "2006-01-02"

// Now is the clock dates default from.
var Now = time.Now

func Today() string {
	return Now().Format(DateLayout)
}

func ParseDate(s string) (time.Time, error) {
	t, err := time.ParseInLocation(DateLayout, s, time.UTC)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q: expected YYYY-MM-DD", s)
	}
	return t, nil
}
