package constvars

import "time"

type contextKey string

const (
	ContextRequestIDKey contextKey = "request_id"
)

// Simulated latencies for the mock clients, matching the prototype's
// setTimeout waits.
const (
	MockFetchDelay  = 1000 * time.Millisecond
	MockCreateDelay = 500 * time.Millisecond
	MockUpdateDelay = 300 * time.Millisecond
)

const (
	DefaultConsultationFee float64 = 150
	DefaultDoctorImageURL  = "https://images.unsplash.com/photo-1559839734-2b71ea197ec2?w=300&h=300&fit=crop&crop=face"
)
