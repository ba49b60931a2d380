package helpers

// BrainzDir is the name of the brainz directory in the user's home directory
const BrainzDir = "brainz"
