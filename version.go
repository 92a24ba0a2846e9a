package lifebeyond

// Version is the museum release. Overridden at build time via
// -ldflags "-X github.com/Devanik21/Life-Beyond-sub000.Version=...".
var Version = "0.1.0"
