// Package contact accepts enquiries from the site's contact form.
//
// An enquiry is sanitized with a strict bluemonday policy, validated with
// go-playground/validator, stamped with a ULID and handed to a Forwarder.
// WebhookForwarder posts JSON to a configured receiver; LogForwarder writes
// the enquiry to the structured log when no receiver is configured.
package contact
