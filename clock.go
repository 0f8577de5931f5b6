package main

import "time"

// Clock abstracts time.Now so the report can be built for any instant.
type Clock interface {
	Now() time.Time
}

// RealClock reads the system clock in the local time zone.
type RealClock struct{}

func (RealClock) Now() time.Time {
	return time.Now()
}
