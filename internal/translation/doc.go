// Package translation provides the translation backends (a LibreTranslate
// style HTTP endpoint, OpenAI and Gemini) and the Dispatcher that fans a
// batch of records out to a backend concurrently and merges the results
// back in input order.
package translation
