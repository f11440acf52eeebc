/*
Package authsdk provides a client SDK for the FreightFlow authentication service.

# Overview

The SDK wraps the service's JSON API: account registration, login, and the
password-reset flow (forgot-password, verify-token, reset-password). All
operations are unauthenticated; the service issues no session tokens.

Create an SDKClient pointed at the service:

	client := authsdk.NewSDKClient("https://auth.example.com")

	// Check service health
	health, err := client.GetLiveness(ctx)

	// Create an account
	msg, err := client.Register(ctx, authsdk.RegisterRequest{
		Name:     "Alice Example",
		Email:    "alice@example.com",
		Password: "hunter2",
	})

	// Log in
	login, err := client.Login(ctx, authsdk.LoginRequest{
		Email:    "alice@example.com",
		Password: "hunter2",
	})
	fmt.Println(login.User.Name)

The password-reset flow spans three calls. The token itself travels out of
band (the service emails a reset link), so the typical client only performs
the final two steps after the user followed the link:

	// Step 1: request a reset link (server emails it)
	_, err := client.ForgotPassword(ctx, authsdk.ForgotPasswordRequest{
		Email: "alice@example.com",
	})

	// Step 2: optionally pre-validate the token from the link
	_, err = client.VerifyToken(ctx, authsdk.VerifyTokenRequest{Token: token})

	// Step 3: set the new password, consuming the token
	_, err = client.ResetPassword(ctx, authsdk.ResetPasswordRequest{
		Token:       token,
		NewPassword: "correct horse battery staple",
	})

# Error Handling

API failures are returned as *APIError carrying the HTTP status code and the
service's machine-readable error code:

	_, err := client.Login(ctx, req)
	var apiErr *authsdk.APIError
	if errors.As(err, &apiErr) {
		switch apiErr.Code {
		case authsdk.ErrorCodeInvalidPassword:
			// wrong password
		case authsdk.ErrorCodeUserNotFound:
			// no such account
		}
	}
*/
package authsdk
