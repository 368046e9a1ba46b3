package model

import "time"

type ApiUsage struct {
	ID           int64
	ApiName      string
	UsageDate    time.Time
	RequestCount int
	TokenCount   int
}
