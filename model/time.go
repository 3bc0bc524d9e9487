package model

import (
	"fmt"
	"strconv"
	"strings"
)

// TimeUnset marks an arrival or departure with no parseable time.
const TimeUnset = -1

// ParseTime converts an HH:MM:SS string to seconds since midnight.
// Hours of 24 and above are legal: they continue the service day's
// timeline. Empty strings, "nan" and anything that is not three
// colon-separated integer fields yield TimeUnset.
func ParseTime(s string) int {
	s = strings.TrimSpace(s)
	if s == "" || strings.EqualFold(s, "nan") {
		return TimeUnset
	}

	split := strings.Split(s, ":")
	if len(split) != 3 {
		return TimeUnset
	}

	hms := [3]int{}
	for i, str := range split {
		j, err := strconv.Atoi(str)
		if err != nil || j < 0 {
			return TimeUnset
		}
		hms[i] = j
	}

	if hms[1] > 59 || hms[2] > 59 {
		return TimeUnset
	}

	return hms[0]*3600 + hms[1]*60 + hms[2]
}

// FormatTime renders seconds since midnight as zero-padded HH:MM:SS.
// The hour field runs past 23 for times on the extended timeline.
func FormatTime(secs int) string {
	return fmt.Sprintf("%02d:%02d:%02d", secs/3600, (secs%3600)/60, secs%60)
}
