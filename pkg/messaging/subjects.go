package messaging

const (
	ProductsSubjectPrefix = "products."
	ProductCreatedSubject = ProductsSubjectPrefix + "created"
	ProductUpdatedSubject = ProductsSubjectPrefix + "updated"
	ProductDeletedSubject = ProductsSubjectPrefix + "deleted"

	// ProductsSubjects matches every product event, for stream configuration.
	ProductsSubjects = ProductsSubjectPrefix + ">"
)
