//go:build !randtok_manualseed

package randtok

// autoSeed enables process-wide one-time seeding for default-constructed
// generators. Build with -tags randtok_manualseed to opt out when the larger
// program already seeds the shared source at a dedicated call site.
const autoSeed = true
