package v1

// BasePath is the route prefix of version 1 of the API
const BasePath = "/api/v1/aes"
