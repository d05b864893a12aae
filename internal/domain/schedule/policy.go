package schedule

import "errors"

var ErrNegativePolicyValue = errors.New("policy values cannot be negative")

// Policy is the reservation policy applied when computing availability and
// validating new bookings. All durations are minutes/hours/days as named.
type Policy struct {
	BufferTimeMin             int  `json:"bufferTimeMinutes"`
	MaxAdvanceDays            int  `json:"maxAdvanceDays"`
	MinAdvanceHours           int  `json:"minAdvanceHours"`
	CancellationDeadlineHours int  `json:"cancellationDeadlineHours"`
	AutoConfirm               bool `json:"autoConfirm"`
	RequireApproval           bool `json:"requireApproval"`
}

// DefaultPolicy is used when no policy has been configured.
func DefaultPolicy() Policy {
	return Policy{
		BufferTimeMin:             15,
		MaxAdvanceDays:            90,
		MinAdvanceHours:           2,
		CancellationDeadlineHours: 24,
		AutoConfirm:               false,
		RequireApproval:           true,
	}
}

func (p Policy) Validate() error {
	if p.BufferTimeMin < 0 || p.MaxAdvanceDays < 0 || p.MinAdvanceHours < 0 || p.CancellationDeadlineHours < 0 {
		return ErrNegativePolicyValue
	}
	return nil
}
