package rest

const (
	// api
	RouteApiV1 = "/api/v1"

	// auth
	RouteAuth     = RouteApiV1 + "/auth"
	RouteLogin    = RouteAuth + "/login"
	RouteRegister = RouteAuth + "/register"

	// files (owner-scoped via the token, no user id in the path)
	RouteUpload     = RouteApiV1 + "/upload"
	RouteFiles      = RouteApiV1 + "/files"
	RouteFileRename = RouteFiles + "/rename"
	RouteFile       = RouteFiles + "/:file_id"

	// public verification, no auth
	RouteVerify = RouteApiV1 + "/verify/:file_id"

	// ops
	RouteHealth  = RouteApiV1 + "/healthz"
	RouteMetrics = RouteApiV1 + "/metrics"
)
