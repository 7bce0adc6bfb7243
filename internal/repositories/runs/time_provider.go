package runs

import "time"

//go:generate mockgen -destination=mocks/mock_time_provider.go -package=mocks github.com/brownlk99/blue-prince-ml-sub000/internal/repositories/runs TimeProvider

type TimeProvider interface {
	Now() time.Time
}

// SystemTimeProvider reads the wall clock
type SystemTimeProvider struct{}

func (SystemTimeProvider) Now() time.Time {
	return time.Now().UTC()
}
