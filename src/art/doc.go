/*
Package art is responsible for finding album artwork over the internet.

It finds album artwork by first querying the MusicBrainz web service for a release
group ID (MBID) using the artist name and album name. Then using this ID it queries the
Cover Art Archive for the images of that release group and returns the URL of the
first one.

Every lookup step reports what went wrong through *ResolveError, which carries one of
three kinds: transport, decode or not-found. AlbumArtFinder hides all of them and only
answers whether there is an image to show.

The following APIs are used to achieve this packages' objective:

  - MusicBrainz API: https://musicbrainz.org/doc/MusicBrainz_API
  - Cover Art Archive: https://musicbrainz.org/doc/Cover_Art_Archive/API
*/
package art
