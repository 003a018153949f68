package main

// version is the CLI version reported by --version.
const version = "1.0.0"
