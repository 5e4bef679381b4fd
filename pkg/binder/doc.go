// Package binder keeps form fields and the properties of a Go struct in sync.
//
// A Binding links one Field (a text input) to one property of a bean through
// an ordered pipeline of validators and converters. Pushing runs the
// pipeline over the field value and writes the result into the bean only if
// every step passed; pulling reads the property, runs the converters
// backwards and writes the text into the field.
//
// A Binder owns the bindings for one bean type, attaches a bean with
// SetBean, pushes every field change into it while attached and notifies
// status listeners after each change.
//
// # Basic Usage
//
//	type ImageData struct {
//	    Text string
//	    Size int
//	}
//
//	type Form struct {
//	    Text      *binder.TextField
//	    ImageSize *binder.TextField `property:"size"`
//	}
//
//	form := &Form{Text: binder.NewTextField(""), ImageSize: binder.NewTextField("")}
//	b := binder.New[ImageData]()
//
//	// explicit binding with validation and conversion
//	b.ForMemberField(form.ImageSize).
//	    WithValidator(validator.NotEmpty("Input values should not be empty")).
//	    WithConverter(converter.StringToInt("Input value should be an integer")).
//	    WithValidator(validator.Positive[int]("Input value should be a positive integer"))
//
//	// everything else by name; pending member bindings are completed here
//	if err := b.BindInstanceFields(form); err != nil {
//	    return err
//	}
//
//	data := &ImageData{Text: "Lorem ipsum", Size: 2}
//	b.SetBean(data)
//	b.AddStatusChangeListener(func(e binder.StatusChangeEvent[ImageData]) {
//	    if e.HasValidationErrors || !e.IsBinderValid() {
//	        // show errors
//	    }
//	})
//
// # Type Safety
//
// Every step checks the type flowing into it when it is added, and Bind
// checks the final type against the property. Mismatches are reported as
// ErrTypeMismatch at setup time, never while the form is in use.
//
// # Resolution
//
// BindInstanceFields and BindFields match fields to the bean's exported
// properties. Properties are named by their `form` tag or the lowercased
// field name. Unmatched fields are skipped unless WithStrictResolution is
// set. Non-string properties need a converter, or WithAutoConversion.
//
// # Errors
//
// WriteBean returns validator.ValidationErrors on invalid input, matching
// ErrValidation via errors.Is. Field-triggered pushes never return errors;
// failures are reported through StatusChangeEvent and IsValid.
package binder
