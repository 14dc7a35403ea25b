// Package cookie reads and writes the session cookie.
//
// A Jar is bound to one cookie name. When it is given a secret, values are
// signed with HMAC-SHA256 and a tampered cookie reads back as ErrBadSig:
//
//	jar, err := cookie.New("campaigner_sid", cookie.WithSecret(secret), cookie.WithSecure(true))
//	if err != nil {
//		return err
//	}
//	jar.Write(w, sessionID, 24*time.Hour)
//	id, err := jar.Read(r)
package cookie
