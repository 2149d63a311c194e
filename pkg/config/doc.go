// Package config holds the process-wide output configuration read by every
// termsay message call: verbosity, quiet mode, timestamps, color mode,
// message recording and the output charset.
//
// A Config is shared by reference between the message API and the output
// sink. Fields may be changed at any time by the embedding application;
// every read takes a consistent Settings snapshot under a read lock.
//
// Configuration can be built from defaults (Default) or loaded from the
// embedded defaults, the user's config file, and TERMSAY_* environment
// variables (Load).
package config
