package notesync

// SelectLatestPrivate picks the annotation to sync: the private entry with
// the maximum creation time. Ties go to the later position in the input
// sequence, which is assumed to be source-chronological ascending. The
// second return is false when the ticket has no private annotations.
func SelectLatestPrivate(annotations []Annotation) (Annotation, bool) {
	var selected Annotation
	found := false
	for _, a := range annotations {
		if !a.Private {
			continue
		}
		// >= so that equal timestamps resolve to the later entry.
		if !found || !a.CreatedAt.Before(selected.CreatedAt) {
			selected = a
			found = true
		}
	}
	return selected, found
}
