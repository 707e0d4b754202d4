//go:build qemu

package console

func init() {
	ProbeFuncs = append(ProbeFuncs, probeForQEMUOutput)
}
