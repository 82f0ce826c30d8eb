package winunc

// connectArgs builds the argument vector mapping the directory,
// authorizing with the given candidate credentials. The
// password travels as its own argument when set, even when
// empty; the user name travels in /user:. The persistence
// switch is always stated since the tool would otherwise fall
// back to a remembered machine default.
func connectArgs(dir *Directory, drive Drive, persistent bool, creds *Credentials) []string {
	args := []string{"use"}
	if drive.Valid() {
		args = append(args, drive.String())
	}
	args = append(args, dir.Path())
	if password, ok := creds.Password(); ok {
		args = append(args, password)
	}
	if creds.Username() != "" {
		args = append(args, "/user:"+creds.Username())
	}
	if persistent {
		args = append(args, "/persistent:yes")
	} else {
		args = append(args, "/persistent:no")
	}
	return args
}

// disconnectArgs names the connection by its local drive when
// bound, by its remote path otherwise. /y waives the prompt
// the tool raises when files are open on the connection, which
// would otherwise stall the captured process.
func disconnectArgs(dir *Directory, drive Drive) []string {
	name := dir.Path()
	if drive.Valid() {
		name = drive.String()
	}
	return []string{"use", name, "/delete", "/y"}
}

// statusArgs is the bare listing invocation.
func statusArgs() []string {
	return []string{"use"}
}

// credentialCandidates orders the fallback variants for
// connecting: the full credentials first, then the user name
// alone, then none at all, trusting a credential the system
// has cached for the host. Only variants the credentials
// actually carry appear, so the list holds one to three
// entries and always ends with the bare attempt.
func credentialCandidates(creds *Credentials) []*Credentials {
	var candidates []*Credentials
	if creds.Username() != "" {
		if _, ok := creds.Password(); ok {
			candidates = append(candidates, creds)
		}
		candidates = append(candidates, User(creds.Username()))
	}
	return append(candidates, nil)
}
