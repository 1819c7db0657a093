package python

import "context"

// ParseShowVersion exports parseShowVersion for testing.
var ParseShowVersion = parseShowVersion //nolint:gochecknoglobals // test export

// BuildInstallArgs exports buildInstallArgs for testing.
var BuildInstallArgs = buildInstallArgs //nolint:gochecknoglobals // test export

// RecordedCall is a command line seen by the fake executors.
type RecordedCall struct {
	Name string
	Args []string
}

// NewPipPackageRepositoryForTest wires fake executors that record every call.
func NewPipPackageRepositoryForTest(
	calls *[]RecordedCall,
	streamErr error,
	captureOutput []byte,
	captureErr error,
) *PipPackageRepository {
	record := func(name string, args []string) {
		*calls = append(*calls, RecordedCall{Name: name, Args: args})
	}
	return &PipPackageRepository{
		stream: func(_ context.Context, _ []string, name string, args ...string) error {
			record(name, args)
			return streamErr
		},
		capture: func(_ context.Context, _ []string, name string, args ...string) ([]byte, error) {
			record(name, args)
			return captureOutput, captureErr
		},
	}
}
