package version

// Version is stamped at build time via -ldflags "-X traitscope/core/version.Version=...".
var Version = "dev"
