package handlers

// AppHandlers aggregates every handler the router mounts.
type AppHandlers struct {
	AuthHandler        *AuthHandler
	JobHandler         *JobHandler
	ApplicationHandler *ApplicationHandler
	FileHandler        *FileHandler
}
