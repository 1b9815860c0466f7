//go:build randtok_manualseed

package randtok

// autoSeed is disabled: the embedding program takes responsibility for seeding
// the shared source, typically once at startup. Generator.Seed still works.
const autoSeed = false
