//go:build rpi3

package console

func init() {
	ProbeFuncs = append(ProbeFuncs, probeForPL011)
}
