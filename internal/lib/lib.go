// Package lib acts as a library for modules that do not fit
// strictly into other layers.
//
// It contains shared utilities and the notification provider
// integrations: email (Resend or SMTP) and Slack incoming webhooks.
package lib
