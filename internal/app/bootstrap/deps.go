package bootstrap

// Deps holds back-end dependencies for the app. ayudahub keeps its state in
// memory, owned by the handler tree built in BuildHandler, so there are no
// external clients to carry.
type Deps struct{}
