package services

// ValidationError reports bad or missing input; no write was attempted.
type ValidationError string

func (e ValidationError) Error() string { return string(e) }

// ConflictError reports a uniqueness violation or a delete blocked by
// dependent records.
type ConflictError string

func (e ConflictError) Error() string { return string(e) }

// NotFoundError reports a missing record.
type NotFoundError string

func (e NotFoundError) Error() string { return string(e) }
