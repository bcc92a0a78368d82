// Package tristate casts external values to a three-valued boolean and
// builds the choice list for a true / false / unset radio input.
//
// The cast generalizes the usual boolean coercion: null-like tokens resolve
// to Unknown first, then the familiar false tokens resolve to False, and
// everything else is True. The unknown choice carries a configurable unset
// key, which the Resolver also treats as a null token so that a submitted
// choice round-trips to Unknown.
//
//	r, err := tristate.New(types.Config{UnsetKey: "null", Locale: "en"},
//	    tristate.WithTranslator(catalog))
//	choices, err := r.Choices(tristate.Labels{})
//	i := r.Selected(choices, types.FromPtr(record.IsProfitable))
//
// A Resolver never changes after New. Build a new one to change the
// configuration.
package tristate

// Version is the release version of the tristate module.
const Version = "0.1.0"
