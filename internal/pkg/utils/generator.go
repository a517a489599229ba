package utils

import (
	"fmt"
	"strconv"
	"sync"
	"time"

	"github.com/google/uuid"
)

func GenerateRequestID() string {
	return uuid.NewString()
}

var (
	appointmentIDMu   sync.Mutex
	lastAppointmentID int64
)

// GenerateAppointmentID returns the current unix time in milliseconds as a
// decimal string. Consecutive calls within the same millisecond are bumped
// by one so ids stay unique and strictly increasing within a process.
func GenerateAppointmentID() string {
	appointmentIDMu.Lock()
	defer appointmentIDMu.Unlock()

	id := time.Now().UnixMilli()
	if id <= lastAppointmentID {
		id = lastAppointmentID + 1
	}
	lastAppointmentID = id

	return strconv.FormatInt(id, 10)
}

func GenerateFileName(prefix, owner, fileExtension string) string {
	timestamp := time.Now().Format("20060102_150405.000000000")
	return fmt.Sprintf("%s_%s_%s%s", prefix, owner, timestamp, fileExtension)
}
