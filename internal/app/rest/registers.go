package rest

func (b *Transport) registerHandlers() {
  b.engine.GET("/health", b.handleHealth)

  api := b.engine.Group("/api/issues")
  {
    api.GET("/:project", b.handleListIssues)
    api.POST("/:project", b.handleCreateIssue)
    api.PUT("/:project", b.handleUpdateIssue)
    api.DELETE("/:project", b.handleDeleteIssue)
  }
}
