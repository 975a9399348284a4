// Package models lists the OpenAI chat models that can be selected for
// the openai translation backend.
package models
