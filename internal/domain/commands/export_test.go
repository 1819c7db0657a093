package commands

// MeetsFloor exports meetsFloor for testing.
var MeetsFloor = meetsFloor //nolint:gochecknoglobals // test export

// NormalizeVersion exports normalizeVersion for testing.
var NormalizeVersion = normalizeVersion //nolint:gochecknoglobals // test export
