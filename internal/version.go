package internal

// Version is the csvtrans release version
const Version = "0.3.0"
