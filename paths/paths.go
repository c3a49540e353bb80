// Package paths computes the document paths that partition all data under a
// single deployment's namespace. The functions are pure; no validation of the
// identifiers is performed, so an appId containing '/' will silently address a
// different location in the store.
package paths

// PublicRoot returns the shared root document for a tenant.
// Path: artifacts/{appId}/public/data
func PublicRoot(appID string) string {
	return "artifacts/" + appID + "/public/data"
}

// PrivateUserRoot returns the per-user root document for a tenant.
// Path: artifacts/{appId}/users/{userId}
func PrivateUserRoot(appID, userID string) string {
	return "artifacts/" + appID + "/users/" + userID
}

// PostsCollection returns the collection holding a course's posts under the
// shared public root.
func PostsCollection(appID, courseID string) string {
	return PublicRoot(appID) + "/courses/" + courseID + "/posts"
}
