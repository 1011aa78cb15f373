// Package capability describes model-dependent constants of the
// DS1000Z family: channel count, reference-slot count, bandwidth-limit
// options and numeric bounds consulted by ranged codecs.
//
// A Profile is selected once at instrument construction by matching
// the model field of the *IDN? response. Profiles for the stock family
// members are built in; site-specific variants can be loaded from a
// YAML file and passed to scope.NewWithProfile.
package capability
