// Package validator wraps go-playground/validator with form-friendly errors.
//
// Field names come from the `form` tag (then `json`, then `env`) and each
// field may carry a `message` tag with the text shown to the user:
//
//	type GenerateEmail struct {
//		Topic string `form:"topic" validate:"required" message:"Please enter a topic first."`
//	}
//
//	if err := validator.ValidateStruct(&req); err != nil {
//		if ve := validator.ExtractValidationErrors(err); ve != nil {
//			warn(ve.First())
//		}
//	}
package validator
