// Package api handles incoming HTTP requests, request validation and
// response formatting for the post generator. It renders the HTML form,
// serves the JSON generation endpoint and translates generation errors into
// status codes and user-facing messages.
package api
