package chart

import "fmt"

// Validate checks the spec for structural problems and reports all of them.
// A nil return means every trace and band is drawable by any host.
func (s *Spec) Validate() error {
	var errs []error

	if s.Title == "" {
		errs = append(errs, &SpecError{Field: "title", Reason: "required"})
	}
	if s.Width < 0 {
		errs = append(errs, &SpecError{Field: "width", Reason: "must not be negative"})
	}
	if s.Height < 0 {
		errs = append(errs, &SpecError{Field: "height", Reason: "must not be negative"})
	}
	if len(s.Traces) == 0 {
		errs = append(errs, &SpecError{Field: "traces", Reason: "at least one trace required"})
	}

	for i := range s.Traces {
		for _, fe := range s.Traces[i].fieldErrors() {
			errs = append(errs, &SpecError{
				Field:  fmt.Sprintf("traces[%d].%s", i, fe.Field),
				Reason: fe.Reason,
			})
		}
	}

	for i, b := range s.Bands {
		if b.X1 <= b.X0 {
			errs = append(errs, &SpecError{
				Field:  fmt.Sprintf("bands[%d]", i),
				Reason: "x1 must be greater than x0",
			})
		}
		if b.Color == "" {
			errs = append(errs, &SpecError{
				Field:  fmt.Sprintf("bands[%d].color", i),
				Reason: "required",
			})
		}
	}

	if len(errs) > 0 {
		return &AggregateError{Errors: errs}
	}
	return nil
}

// Validate checks the trace's coordinate invariants in isolation.
func (t *Trace) Validate() error {
	fes := t.fieldErrors()
	if len(fes) == 0 {
		return nil
	}
	errs := make([]error, len(fes))
	for i, fe := range fes {
		errs[i] = fe
	}
	return &AggregateError{Errors: errs}
}

// fieldErrors reports every broken invariant with paths relative to the trace.
func (t *Trace) fieldErrors() []*SpecError {
	var errs []*SpecError

	kindKnown := true
	if _, err := ParseKind(string(t.Kind)); err != nil {
		kindKnown = false
		errs = append(errs, &SpecError{Field: "kind", Reason: err.Error()})
	}

	if len(t.X) == 0 {
		errs = append(errs, &SpecError{Field: "x", Reason: "at least one point required"})
	}
	if len(t.Y) != len(t.X) {
		errs = append(errs, &SpecError{
			Field:  "y",
			Reason: fmt.Sprintf("length %d does not match x length %d", len(t.Y), len(t.X)),
		})
	}
	if t.Z != nil && len(t.Z) != len(t.X) {
		errs = append(errs, &SpecError{
			Field:  "z",
			Reason: fmt.Sprintf("length %d does not match x length %d", len(t.Z), len(t.X)),
		})
	}
	if t.Labels != nil && len(t.Labels) != len(t.X) {
		errs = append(errs, &SpecError{
			Field:  "labels",
			Reason: fmt.Sprintf("length %d does not match x length %d", len(t.Labels), len(t.X)),
		})
	}

	if kindKnown {
		switch {
		case t.Kind.Is3D() && t.Z == nil:
			errs = append(errs, &SpecError{Field: "z", Reason: "required for scatter3d traces"})
		case t.Z != nil && !t.Kind.Is3D() && t.Kind != KindSegment:
			errs = append(errs, &SpecError{
				Field:  "z",
				Reason: fmt.Sprintf("not allowed for %s traces", t.Kind),
			})
		}
		if t.Kind == KindSegment && len(t.X) != 2 {
			errs = append(errs, &SpecError{Field: "x", Reason: "segment traces carry exactly two points"})
		}
	}

	return errs
}
