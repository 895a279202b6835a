// Package service contains the application's orchestration layer.
//
// PlaceService coordinates the cross-entity mutations that must stay
// consistent (a place row and its back-reference in the owner's place set
// change together or not at all), and UserService orchestrates signup and
// login on top of the credential services.
package service
