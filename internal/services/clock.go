package services

import "time"

// timeNow is the clock for every deadline and deletion stamp in this
// package. Tests swap it to pin time.
var timeNow = time.Now
