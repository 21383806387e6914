package extract

// Summary is the printable outcome of one command.
type Summary struct {
	Command string `json:"command" yaml:"command"`
	Status  Status `json:"status" yaml:"status"`
	ID      string `json:"id,omitempty" yaml:"id,omitempty"`
	Options int    `json:"options" yaml:"options"`
	Hidden  int    `json:"hidden" yaml:"hidden"`
	Error   string `json:"error,omitempty" yaml:"error,omitempty"`
}

// Summary condenses the result for output.
func (r *Result) Summary() Summary {
	s := Summary{
		Command: r.Command,
		Status:  r.Status,
	}

	if sp := r.Spec(); sp != nil {
		s.ID = sp.ID
		s.Options = len(sp.Options())
		s.Hidden = sp.HiddenCount()
	}
	if r.Err != nil {
		s.Error = r.Err.Error()
	}

	return s
}

// Summaries returns one summary per recorded result, in command order.
func (r *Report) Summaries() []Summary {
	out := make([]Summary, 0, len(r.Results))
	for _, res := range r.Results {
		if res == nil {
			continue
		}
		out = append(out, res.Summary())
	}

	return out
}
