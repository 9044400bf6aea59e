// Package console provides operator input for the turn controller.
//
// Reader blocks on a real stream such as stdin. AutoInput and ScriptedInput
// never block and are used for headless runs and tests.
package console
