package browser

// stealthScript runs before any page script and masks the most common
// headless fingerprints. Profile sites aggressively gate automated
// sessions; without this the auth wall shows up on the first navigation.
const stealthScript = `
Object.defineProperty(navigator, 'webdriver', { get: () => undefined });
Object.defineProperty(navigator, 'languages', { get: () => ['en-US', 'en'] });
Object.defineProperty(navigator, 'plugins', { get: () => [1, 2, 3] });
window.chrome = window.chrome || { runtime: {} };
const origQuery = window.navigator.permissions.query;
window.navigator.permissions.query = (parameters) =>
	parameters.name === 'notifications'
		? Promise.resolve({ state: Notification.permission })
		: origQuery(parameters);
`
