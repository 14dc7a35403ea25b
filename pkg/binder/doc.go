// Package binder maps request form and query values onto tagged structs.
//
//	type SendEmail struct {
//		Recipient    string `form:"recipient"`
//		CustomSender bool   `form:"custom_sender"`
//	}
//
//	var req SendEmail
//	err := binder.Form()(r, &req)
package binder
