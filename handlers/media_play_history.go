package handlers

// This should be a handlers file that will allow you to get all of the details needed for a users media play history.
//
// - Needs standard crud operations for media play history
// - Should be able to get the media Item as well for attaching to the json object, if requested.
// - Should be able to get all of the media play history for a user, or a specific media item.
// - Should be able to get a specific media play history record by internal ID.
// - Should be able to get MediaPlayHistory by client item ID.
// - Should be able to get MediaPlayHistory by external source ID. (TMDB, IMDB)
