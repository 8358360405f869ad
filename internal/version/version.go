package version

// Version is the SDK version, overridden at build time with
// -ldflags "-X github.com/steamship-core/steamship-go/internal/version.Version=...".
var Version = "0.1.0-dev"
