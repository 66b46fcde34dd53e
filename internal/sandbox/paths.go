package sandbox

// Paths lists what stays visible inside the sandbox.
type Paths struct {
	TempDir    string
	LogDir     string
	Executable string
}
