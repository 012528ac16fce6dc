package helpers

type contextKey string

// ApiGwV2ReqKey carries the raw API Gateway request through the handler
// chain so handlers can inspect the original event when needed.
const ApiGwV2ReqKey contextKey = "apiGwV2Req"
