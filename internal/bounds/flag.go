package bounds

// Value is a pflag.Value holding an optional unsigned range.
// Range stays nil until Set succeeds.
type Value struct {
	Range *Range[uint]
}

func (v *Value) String() string {
	if v.Range == nil {
		return ""
	}
	return v.Range.String()
}

func (v *Value) Set(s string) error {
	r, err := ParseRange(s)
	if err != nil {
		return err
	}
	v.Range = &r
	return nil
}

func (v *Value) Type() string {
	return "range"
}
