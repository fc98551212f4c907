package internal

// Version is the wordexport release, shown by --version
const Version = "0.3.0"
