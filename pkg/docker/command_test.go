package docker

// fakeCommand scripts the docker CLI for tests: it records every
// invocation and returns whatever the test configured.

type call struct {
	stdin string
	args  []string
}

type fakeCommand struct {
	calls     []call
	output    string
	outputErr error
	streamErr error
}

func (f *fakeCommand) Stream(args []string) error {
	f.calls = append(f.calls, call{args: args})
	return f.streamErr
}

func (f *fakeCommand) Output(stdin string, args []string) (string, error) {
	f.calls = append(f.calls, call{stdin: stdin, args: args})
	return f.output, f.outputErr
}

func newFakeClient(output string) (*Client, *fakeCommand) {
	fake := &fakeCommand{output: output}
	return &Client{command: fake}, fake
}
