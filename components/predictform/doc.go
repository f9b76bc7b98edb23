// Package predictform mounts a prediction form on a net/http mux.
//
// The page route renders the form on GET and, on a form-urlencoded POST,
// submits the posted values and re-renders the page with the price or error
// inline. The API route accepts a JSON object of raw field values and answers
// with {"price": n} or {"error": "..."}. Both routes create a fresh form per
// request, so no state survives between requests.
package predictform
