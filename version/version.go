package version

// Version is the build version, overridden with -ldflags "-X".
var Version = "dev"
